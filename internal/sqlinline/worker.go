package sqlinline

// Reconciliation statements run by cmd/worker. Each is idempotent and
// safe to repeat on every tick.

const QReconcileSponsorFlags = `--sql 0ce4e3a5-08b0-4510-ab19-6028b1c49986
update dogs
set is_sponsored = (sponsor_id is not null)
where is_sponsored is distinct from (sponsor_id is not null);
`

const QRecomputeTotalDonated = `--sql 9f647877-fe04-41dc-ac2c-5370321583e2
update profiles p
set total_donated = coalesce(t.total, 0)
from profiles p2
left join (
    select donor_id,
           sum(case when currency = 'IDR' then amount / $1::numeric else amount end) as total
    from donations
    where payment_status = 'completed'
    group by donor_id
) t on t.donor_id = p2.id
where p.id = p2.id
  and p.total_donated is distinct from coalesce(t.total, 0);
`

const QRefreshMonthlySponsorFlags = `--sql 36d985cb-e668-45fa-83ef-088038114ae5
update profiles p
set is_monthly_sponsor = flagged.active
from (
    select p2.id,
           exists (select 1 from dogs d where d.sponsor_id = p2.id)
           or exists (
               select 1 from donations dn
               where dn.donor_id = p2.id
                 and dn.type = 'monthly'
                 and dn.payment_status = 'completed'
           ) as active
    from profiles p2
) flagged
where p.id = flagged.id
  and p.is_monthly_sponsor is distinct from flagged.active;
`
